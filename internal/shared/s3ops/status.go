package s3ops

import (
	"errors"
	"fmt"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

type statusCoder interface {
	HTTPStatusCode() int
}

// responseStatus returns the status of the HTTP response carried by err,
// if the request got that far.
func responseStatus(err error) (int, bool) {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode(), true
	}
	return 0, false
}

// resultStatus reads the raw response status from operation metadata.
// fallback is the status S3 documents for the operation.
func resultStatus(md middleware.Metadata, fallback int) int {
	if resp, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response); ok && resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	return fallback
}

// settle turns an SDK call outcome into a status. Error responses become
// plain statuses; transport failures are returned wrapped with op.
func settle(md middleware.Metadata, err error, fallback int, op string) (int, error) {
	if err != nil {
		if status, ok := responseStatus(err); ok {
			return status, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return resultStatus(md, fallback), nil
}
