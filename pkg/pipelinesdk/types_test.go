package pipelinesdk

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  LoginRequest
		want []string
	}{
		{"hr", LoginRequest{Email: "a@b.co", Role: "HR"}, nil},
		{"hr lowercase", LoginRequest{Email: "a@b.co", Role: "hr"}, nil},
		{"company", LoginRequest{Email: "a@b.co", Role: "COMPANY", Company: "Acme"}, nil},
		{"company without company", LoginRequest{Email: "a@b.co", Role: "COMPANY"}, []string{"company"}},
		{"missing everything", LoginRequest{}, []string{"email", "role"}},
		{"bad email", LoginRequest{Email: "nope", Role: "HR"}, []string{"email"}},
		{"bad role", LoginRequest{Email: "a@b.co", Role: "ADMIN"}, []string{"role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.want == nil {
				require.Nil(t, errs)
				return
			}
			require.Len(t, errs, len(tt.want))
			for _, f := range tt.want {
				require.Contains(t, errs, f)
			}
		})
	}
}

func TestAddCandidateRequestValidate(t *testing.T) {
	ok := AddCandidateRequest{Name: "Jane", Email: "jane@example.com", Role: "Eng", Company: "Acme"}
	require.Nil(t, ok.Validate())

	errs := AddCandidateRequest{Name: "  ", Email: "jane"}.Validate()
	require.Equal(t, map[string]string{
		"name":    "name is required",
		"email":   "email is not a valid address",
		"role":    "role is required",
		"company": "company is required",
	}, errs)
}

func TestAPIErrorRoundTrip(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewValidationError(map[string]string{"name": "name is required"}).WriteError(rec)

		err := parseErrorResponse(rec.Result(), rec.Body.Bytes())
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, ErrorCodeValidation, apiErr.Code)
		require.Equal(t, "name is required", apiErr.Details["name"])
	})

	t.Run("plain", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrNotSignedIn.WriteError(rec)

		err := parseErrorResponse(rec.Result(), rec.Body.Bytes())
		require.Equal(t, &APIError{
			StatusCode:  http.StatusUnauthorized,
			Code:        ErrorCodeInvalidToken,
			Description: "no active session",
		}, err)
	})

	t.Run("non json body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusBadGateway)

		err := parseErrorResponse(rec.Result(), []byte("<html>"))
		require.Equal(t, http.StatusBadGateway, err.(*APIError).StatusCode)
		require.Equal(t, ErrorCodeServerError, err.(*APIError).Code)
	})

	t.Run("success is nil", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusOK)
		require.NoError(t, parseErrorResponse(rec.Result(), nil))
	})
}
