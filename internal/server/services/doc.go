// Package services contains the backend's business logic: request validation
// on top of the Postgres repositories, plus the dashboard aggregate.
package services
