// Package cli provides the interactive command-line client of the NGO
// impact-reporting API.
//
// It wires configuration, logging, the HTTP API client, and the upload,
// report, and dashboard services behind a REPL. Typical flow: select a CSV
// file, upload it, and follow the job until the server has processed every
// row; or submit a single monthly report and look at the monthly dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Leaving the REPL stops any job polling still in progress.
package cli
