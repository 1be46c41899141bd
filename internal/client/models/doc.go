// Package models defines the data exchanged with the reporting API: bulk
// upload jobs, single monthly reports, and dashboard aggregates.
package models
