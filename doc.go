// Package hadatetime fetches the current date and time from a Home
// Assistant sensor.
//
// The package issues one authenticated GET against the REST states
// endpoint (/api/states/{entity_id}) and re-serializes the entity's
// state field as a small JSON result. Any failure, from a refused
// connection to a payload without a state field, is folded into that
// same result shape as an error message instead of being surfaced as a
// Go error, so a fetch always yields a printable JSON value. The
// package does not cache results or retry failures, and it never
// writes to the platform.
package hadatetime
