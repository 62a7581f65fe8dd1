package middleware

var HTTPRequestsTotal = httpRequestsTotal
