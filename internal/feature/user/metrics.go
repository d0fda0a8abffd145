package user

import "github.com/prometheus/client_golang/prometheus"

var (
	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "user_registrations_total", Help: "Registration attempts by result"},
		[]string{"result"}, // ok | invalid | error
	)
	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "user_logins_total", Help: "Identity checks by result"},
		[]string{"result"}, // ok | denied
	)
)

func init() { prometheus.MustRegister(registrations, logins) }
