package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// decodeAircraft reads one JSON aircraft from the body and applies the
// required-field rules.
func decodeAircraft(w http.ResponseWriter, r *http.Request) (dtos.Aircraft, error) {
	var dto dtos.Aircraft

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, dtos.ErrInvalidBrand) {
			return dto, common.NewMalformedError(constants.MsgInvalidBrand, err)
		}
		return dto, common.NewMalformedError(constants.MsgMalformedJSON, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return dto, common.NewMalformedError(constants.MsgMalformedJSON, errors.New("body must only contain a single JSON value"))
	}

	if err := validateAircraft(dto); err != nil {
		return dto, err
	}
	return dto, nil
}

func validateAircraft(dto dtos.Aircraft) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := constants.FieldRequiredMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		details = append(details, fe.Field()+": "+msg)
	}
	return common.NewValidationError(constants.MsgValidationFailed, details)
}

// readIDParam parses the {id} path segment
func readIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, common.NewMalformedError(constants.MsgInvalidID, err)
	}
	return id, nil
}
