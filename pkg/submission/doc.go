// Package submission gates form submission on a full validation pass.
//
// Gate.ValidateAll re-validates every field the host currently holds, marks
// all of them touched and reports a Verdict. Gate.Submit additionally runs the
// host's Action, and only when the verdict passes. The gate keeps no per-form
// state; it may log through zerolog and count passes with Prometheus.
package submission
