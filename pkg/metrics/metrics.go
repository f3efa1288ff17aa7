package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geotrack", Name: "logins_total", Help: "Login attempts by outcome."},
		[]string{"outcome"},
	)
	TokenValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geotrack", Name: "token_validations_total", Help: "Session token validations by outcome."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geotrack", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geotrack", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Logins)
	reg.MustRegister(TokenValidations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
