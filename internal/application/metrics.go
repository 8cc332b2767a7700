package application

import "expvar"

// Counters published at /api/debug/vars.
var (
	metricRegistrations = expvar.NewInt("users_registered_total")
	metricLogins        = expvar.NewInt("users_logins_total")
	metricIDReviews     = expvar.NewInt("users_id_reviews_requested_total")
	metricEmailsQueued  = expvar.NewMap("emails_enqueued_total")
)
