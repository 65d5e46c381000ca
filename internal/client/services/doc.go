// Package services contains the application services of the client: the
// reflection lifecycle (list, create, update, delete), admin authentication,
// and the contact form. Services own the flow between the gateway, the
// record stores and the session guard; the CLI layer only renders and
// prompts.
package services
