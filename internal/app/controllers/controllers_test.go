package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/models"
	"registroacademico/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = validation.Register()
}

type fakeAlunoService struct {
	createFn   func(ctx context.Context, aluno models.Aluno) (*models.Aluno, error)
	listAllFn  func(ctx context.Context) ([]*models.Aluno, error)
	findByIDFn func(ctx context.Context, id int64) (*models.Aluno, error)
	updateFn   func(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error)
	deleteFn   func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeAlunoService) Create(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
	return f.createFn(ctx, aluno)
}

func (f *fakeAlunoService) ListAll(ctx context.Context) ([]*models.Aluno, error) {
	return f.listAllFn(ctx)
}

func (f *fakeAlunoService) FindByID(ctx context.Context, id int64) (*models.Aluno, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeAlunoService) Update(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error) {
	return f.updateFn(ctx, id, aluno)
}

func (f *fakeAlunoService) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteFn(ctx, id)
}

type fakeDepartamentoService struct {
	createFn   func(ctx context.Context, departamento models.Departamento) (*models.Departamento, error)
	listAllFn  func(ctx context.Context) ([]*models.Departamento, error)
	findByIDFn func(ctx context.Context, id int64) (*models.Departamento, error)
	updateFn   func(ctx context.Context, id int64, departamento models.Departamento) (*models.Departamento, error)
	deleteFn   func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeDepartamentoService) Create(ctx context.Context, departamento models.Departamento) (*models.Departamento, error) {
	return f.createFn(ctx, departamento)
}

func (f *fakeDepartamentoService) ListAll(ctx context.Context) ([]*models.Departamento, error) {
	return f.listAllFn(ctx)
}

func (f *fakeDepartamentoService) FindByID(ctx context.Context, id int64) (*models.Departamento, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeDepartamentoService) Update(ctx context.Context, id int64, departamento models.Departamento) (*models.Departamento, error) {
	return f.updateFn(ctx, id, departamento)
}

func (f *fakeDepartamentoService) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteFn(ctx, id)
}

type fakeNotaService struct {
	createFn   func(ctx context.Context, nota models.Nota) (*models.Nota, error)
	listAllFn  func(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error)
	findByIDFn func(ctx context.Context, alunoID, provaID int64) (*models.Nota, error)
	updateFn   func(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error)
	deleteFn   func(ctx context.Context, alunoID, provaID int64) (bool, error)
}

func (f *fakeNotaService) Create(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	return f.createFn(ctx, nota)
}

func (f *fakeNotaService) ListAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
	return f.listAllFn(ctx, alunoID, provaID)
}

func (f *fakeNotaService) FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error) {
	return f.findByIDFn(ctx, alunoID, provaID)
}

func (f *fakeNotaService) Update(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error) {
	return f.updateFn(ctx, alunoID, provaID, nota)
}

func (f *fakeNotaService) Delete(ctx context.Context, alunoID, provaID int64) (bool, error) {
	return f.deleteFn(ctx, alunoID, provaID)
}

type fakeAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *models.Usuario, error)
	meFn     func(ctx context.Context, token string) (*models.Usuario, error)
	logoutFn func(ctx context.Context, token string)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, *models.Usuario, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuthService) Me(ctx context.Context, token string) (*models.Usuario, error) {
	return f.meFn(ctx, token)
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) {
	if f.logoutFn != nil {
		f.logoutFn(ctx, token)
	}
}
