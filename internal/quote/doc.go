// Package quote models a website quote request and turns it into the
// subject and plaintext body of the notification email.
//
// Two form shapes are accepted. The handyman form sends postcode, service,
// date and message; the removals form sends from, to, moveSize and
// services. A submission carrying any removals field is treated as a
// removals request.
package quote
