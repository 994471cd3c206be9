package ui

import (
	"fmt"
	"io"
)

func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, StatusSuccessStyle.Render("✓ "+msg))
}

func Warning(w io.Writer, msg string) {
	fmt.Fprintln(w, StatusWarningStyle.Render("! "+msg))
}

func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, StatusErrorStyle.Render("❌ "+msg))
}
