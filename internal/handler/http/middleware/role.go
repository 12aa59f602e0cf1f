package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/wfm-backend-go/internal/domain/employee"
	"github.com/staffhub/wfm-backend-go/internal/handler/http/response"
)

// RequireReportAccess gates the aggregated report routes on role.
func RequireReportAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "report access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !employee.Role(roleStr).CanViewReports() {
			response.Forbidden(w, "report access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOverrideAccess gates attendance corrections for other employees.
func RequireOverrideAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "manager access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !employee.Role(roleStr).CanOverrideAttendance() {
			response.Forbidden(w, "manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
