package models

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the database and configures the connection pool.
//
// When DB_HOST is set, a postgresql connection is built from the DB_*
// environment variables and dsn is ignored. Otherwise dsn is the path of
// the sqlite database file.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	if _, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
	} else {
		log.Debug().Msg("DB_HOST is not set, using sqlite database")
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("automacao_pmo:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("automacao_pmo:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("automacao_pmo:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("automacao_pmo:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("automacao_pmo:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("automacao_pmo:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("automacao_pmo:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		Secao{},
		Equipe{},
		Recurso{},
		StatusProjeto{},
		Projeto{},
		Alocacao{},
		HorasPlanejadas{},
		Apontamento{},
		HorasDisponiveisRH{},
		DimTempo{},
		Usuario{},
	)
	if err != nil {
		return fmt.Errorf("error during database migration: %w", err)
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	constraints := []struct {
		substring string
		err       error
	}{
		{"UNIQUE constraint failed: secao.nome", ErrSecaoNomeNotUnique},
		{"UNIQUE constraint failed: equipe.secao_id, equipe.nome", ErrEquipeNomeNotUnique},
		{"UNIQUE constraint failed: recurso.email", ErrRecursoEmailNotUnique},
		{"UNIQUE constraint failed: status_projeto.nome", ErrStatusProjetoNomeNotUnique},
		{"UNIQUE constraint failed: projeto.codigo_empresa", ErrProjetoCodigoNotUnique},
		{"UNIQUE constraint failed: alocacao_recurso_projeto.recurso_id, alocacao_recurso_projeto.projeto_id", ErrAlocacaoNotUnique},
		{"UNIQUE constraint failed: horas_planejadas_alocacao.alocacao_id, horas_planejadas_alocacao.ano, horas_planejadas_alocacao.mes", ErrHorasPlanejadasNotUnique},
		{"UNIQUE constraint failed: horas_disponiveis_rh.recurso_id, horas_disponiveis_rh.ano, horas_disponiveis_rh.mes", ErrHorasDisponiveisNotUnique},
		{"UNIQUE constraint failed: apontamento.jira_worklog_id", ErrApontamentoWorklogNotUnique},
		{"UNIQUE constraint failed: usuario.email", ErrUsuarioEmailNotUnique},
	}

	for _, c := range constraints {
		if strings.Contains(db.Error.Error(), c.substring) {
			db.Error = c.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}
