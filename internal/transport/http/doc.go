// Package http implements the HTTP handlers of the booking report API.
//
// Handlers only parse query parameters, call a service and render the
// result. Every route is a GET:
//
//	/                    plain-text banner
//	/health              plain-text liveness
//	/health/ready        readiness, 503 when the sheet cannot be read
//	/bookings/summary    ?period=
//	/bookings            ?cluster=&status=&period=
//	/bookings/export     ?cluster=&status=&period=&format=csv|xlsx
//	/revenue/summary     ?period=
//	/revenue/stats       ?period=
//	/loan-status
//	/demand/details      ?cluster=
//	/customer            ?mobile=&unit=
//
// Failures are answered with {"error": "<message>"}. The message names the
// route, never the underlying cause; the cause goes to the log through
// errors.ErrorHandler. Rejected parameters answer 400, everything else 500.
package http
