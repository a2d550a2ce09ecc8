package user

import (
	"errors"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName        = errors.New("nome não pode ser vazio")
	ErrEmptyLogin       = errors.New("usuário não pode ser vazio")
	ErrEmptyPassword    = errors.New("senha não pode ser vazia")
	ErrWrongPassword    = errors.New("senha atual errada")
	ErrPasswordMismatch = errors.New("confirmação não bate")
	ErrInvalidModule    = errors.New("módulo inválido")
)

// PasswordCost é o custo bcrypt usado ao gravar senhas
var PasswordCost = bcrypt.DefaultCost

// User representa um usuário do sistema. Os nomes JSON seguem o
// layout já persistido ("user" e "pass").
type User struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Login    string          `json:"user"`
	Password string          `json:"pass"`
	Role     string          `json:"role"`
	Modules  []access.Module `json:"modules"`
}

// GetID implementa domain.Record
func (u User) GetID() int { return u.ID }

// NewUser cria um usuário com senha já protegida por hash.
// Sem módulos explícitos, recebe os módulos padrão do papel.
func NewUser(id int, name, login, password, role string, modules []access.Module) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(login) == "" {
		return nil, ErrEmptyLogin
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if role == "" {
		role = access.RoleUser
	}
	for _, m := range modules {
		if !m.IsValid() {
			return nil, ErrInvalidModule
		}
	}
	if len(modules) == 0 {
		modules = access.DefaultModules(role)
	}

	u := &User{ID: id, Name: name, Login: login, Role: role, Modules: modules}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasHashedPassword indica se a senha gravada já está em bcrypt
func (u *User) HasHashedPassword() bool {
	_, err := bcrypt.Cost([]byte(u.Password))
	return err == nil
}

// UpgradeLegacyPassword converte senhas gravadas em texto puro para bcrypt
func (u *User) UpgradeLegacyPassword() error {
	if u.Password == "" || u.HasHashedPassword() {
		return nil
	}
	return u.SetPassword(u.Password)
}

// ChangePassword troca a senha após conferir a atual e a confirmação
func (u *User) ChangePassword(current, next, confirm string) error {
	if current == "" || next == "" || confirm == "" {
		return ErrEmptyPassword
	}
	if !u.CheckPassword(current) {
		return ErrWrongPassword
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	return u.SetPassword(next)
}

// SetModules substitui a lista explícita de módulos
func (u *User) SetModules(modules []access.Module) error {
	for _, m := range modules {
		if !m.IsValid() {
			return ErrInvalidModule
		}
	}
	u.Modules = append([]access.Module(nil), modules...)
	return nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == access.RoleAdmin
}

// HasAccess verifica se o usuário pode acessar o módulo
func (u *User) HasAccess(module access.Module) bool {
	return access.HasAccess(u.Role, u.Modules, module)
}
