package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role determines what a user is allowed to change.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleComum Role = "COMUM"
)

// Usuario is a login account, optionally linked to the resource it
// belongs to.
type Usuario struct {
	Model
	Nome      string
	Email     string `gorm:"uniqueIndex"`
	SenhaHash string `json:"-"`
	Role      Role   `gorm:"default:COMUM"`
	RecursoID *uint64
	Recurso   *Recurso `json:"-"`
	Ativo     bool     `gorm:"default:true"`
}

func (Usuario) TableName() string {
	return "usuario"
}

var (
	ErrRoleInvalida  = errors.New("the user role must be ADMIN or COMUM")
	ErrSenhaRequired = errors.New("the password cannot be empty")
)

func (u *Usuario) BeforeSave(_ *gorm.DB) error {
	u.Nome = strings.TrimSpace(u.Nome)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Role == "" {
		u.Role = RoleComum
	}

	if u.Role != RoleAdmin && u.Role != RoleComum {
		return ErrRoleInvalida
	}

	return nil
}

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Usuario)
	return u.checkIntegrity(tx, *toSave)
}

func (u *Usuario) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("RecursoID") {
		toSave, ok := tx.Statement.Dest.(Usuario)
		if !ok {
			return nil
		}
		return u.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (u *Usuario) checkIntegrity(tx *gorm.DB, toSave Usuario) error {
	if toSave.RecursoID == nil {
		return nil
	}

	return tx.First(&Recurso{}, *toSave.RecursoID).Error
}

// SetSenha hashes and stores the password.
func (u *Usuario) SetSenha(senha string) error {
	if senha == "" {
		return ErrSenhaRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.SenhaHash = string(hash)
	return nil
}

// CheckSenha reports whether the password matches the stored hash.
func (u Usuario) CheckSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)) == nil
}
