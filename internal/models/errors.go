package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Errors for unique constraints. The database callbacks translate driver
// errors into these so that callers never have to parse constraint names.
var (
	ErrSecaoNomeNotUnique          = errors.New("the section name must be unique")
	ErrEquipeNomeNotUnique         = errors.New("the team name must be unique for the section")
	ErrRecursoEmailNotUnique       = errors.New("the resource email must be unique")
	ErrStatusProjetoNomeNotUnique  = errors.New("the project status name must be unique")
	ErrProjetoCodigoNotUnique      = errors.New("the project company code must be unique")
	ErrAlocacaoNotUnique           = errors.New("there is already an allocation for this resource and project")
	ErrHorasPlanejadasNotUnique    = errors.New("there is already a planned hours entry for this allocation and month")
	ErrHorasDisponiveisNotUnique   = errors.New("there is already a capacity entry for this resource and month")
	ErrApontamentoWorklogNotUnique = errors.New("this worklog has already been imported")
	ErrUsuarioEmailNotUnique       = errors.New("the user email must be unique")
)
