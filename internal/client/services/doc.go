// Package services contains the application services of the reporting
// client: the bulk upload controller with its job-status polling, single
// report submission, and the monthly dashboard query.
//
// Services validate user input before any network call and keep the state a
// UI needs to render (loading flags, the last job snapshot, the last error
// message).
package services
