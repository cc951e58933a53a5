package errors

import "net/http"

var (
	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found",
		http.StatusNotFound,
	)

	ErrInvalidDistrictID = New(
		"INVALID_DISTRICT_ID",
		"Invalid district ID",
		http.StatusBadRequest,
	)

	ErrNoSelection = New(
		"NO_SELECTION",
		"No district is selected for editing",
		http.StatusConflict,
	)

	ErrSubmissionInProgress = New(
		"SUBMISSION_IN_PROGRESS",
		"A simulation is already running",
		http.StatusConflict,
	)

	ErrSimulationUnavailable = New(
		"SIMULATION_UNAVAILABLE",
		"Simulation service is unavailable",
		http.StatusBadGateway,
	)

	ErrInvalidRegistry = New(
		"INVALID_REGISTRY",
		"District registry is invalid",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
