package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type DecodeValidator struct{}

// DecodeJSONPayload decodes the request body into object and, when the
// object is validatable, runs its rules. Rule errors are returned
// unwrapped so the first failing rule's message reaches the client
// verbatim.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()
	err := decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	return t.Validate()
}
