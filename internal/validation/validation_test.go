package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/errs"
)

var validate = validator.New()

type createRequest struct {
	Name     string `json:"name" validate:"required,max=10"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func (r *createRequest) Validate() error { return validate.Struct(r) }

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"name":"speaker","quantity":2}`)

	payload := new(createRequest)
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "speaker", payload.Name)
	assert.Equal(t, 2, payload.Quantity)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, `{"name":`)

	err := BindAndValidate(c, new(createRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, `{"name":"way too long a name","quantity":0}`)

	err := BindAndValidate(c, new(createRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 2)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must not exceed 10 characters", fields["name"])
	assert.Equal(t, "is required", fields["quantity"])
}

func TestExtractValidationErrorCustom(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "items", Message: "must not be empty"},
	})

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "items", fieldErrors[0].Field)
	assert.Equal(t, "must not be empty", fieldErrors[0].Error)
}
