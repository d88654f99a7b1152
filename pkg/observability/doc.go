/*
Package observability provides tools for monitoring the typeline engine:
lifecycle hook fan-out and prometheus collectors tracking executed
commands, loop cycles, and callback failures.
*/
package observability
