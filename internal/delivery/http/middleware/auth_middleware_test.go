package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-pharmacy-api/config"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/pkg/jwt"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
}

// echoSubject writes the authenticated subject and role.
var echoSubject = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	subject, _ := GetSubjectFromContext(r.Context())
	role, _ := GetRoleFromContext(r.Context())
	w.Write([]byte(subject + "/" + role))
})

func TestAuthenticate(t *testing.T) {
	svc := newJWT()
	token, tokenID, err := svc.GenerateAccessToken("user-7", entity.RolePharmacist)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		header      string
		revocations *fakeRevocations
		code        int
		body        string
	}{
		{"missing header", "", nil, http.StatusUnauthorized, "Authorization header is required"},
		{"not bearer", "Basic " + token, nil, http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage token", "Bearer abc.def.ghi", nil, http.StatusUnauthorized, "Invalid or expired token"},
		{"valid", "Bearer " + token, &fakeRevocations{}, http.StatusOK, "user-7/pharmacist"},
		{"revoked", "Bearer " + token, &fakeRevocations{revoked: map[string]bool{tokenID: true}}, http.StatusUnauthorized, "Token has been revoked"},
		{"revocation store down", "Bearer " + token, &fakeRevocations{err: errors.New("dial tcp")}, http.StatusInternalServerError, "Failed to validate token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checker TokenRevocationChecker
			if tt.revocations != nil {
				checker = tt.revocations
			}
			m := NewAuthMiddleware(svc, checker)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(echoSubject).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("expected body to contain %q, got %s", tt.body, rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_NoRevocationStore(t *testing.T) {
	svc := newJWT()
	token, _, err := svc.GenerateAccessToken("user-1", entity.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	NewAuthMiddleware(svc, nil).Authenticate(echoSubject).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "user-1/admin" {
		t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	withRole := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		if role == "" {
			return req
		}
		return req.WithContext(context.WithValue(req.Context(), RoleKey, role))
	}

	tests := []struct {
		name  string
		guard func(http.Handler) http.Handler
		role  string
		code  int
	}{
		{"admin passes admin guard", RequireAdmin, entity.RoleAdmin, http.StatusOK},
		{"pharmacist blocked from delete", RequireAdmin, entity.RolePharmacist, http.StatusForbidden},
		{"pharmacist passes pharmacy guard", RequirePharmacy, entity.RolePharmacist, http.StatusOK},
		{"receptionist blocked from stock", RequirePharmacy, entity.RoleReceptionist, http.StatusForbidden},
		{"no role in context", RequirePharmacy, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.guard(echoSubject).ServeHTTP(rec, withRole(tt.role))
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}
