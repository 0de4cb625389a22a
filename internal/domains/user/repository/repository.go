package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/user/model"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

var ErrNoLastID = errors.New("user sequence returned no value")

type User interface {
	Insert(ctx context.Context, user model.User) error
	LastID(ctx context.Context) (int, error)
	CountByCredentials(ctx context.Context, userID int, password string) (int, error)
	GetPassword(ctx context.Context, userID int) (string, bool, error)
	GetUserType(ctx context.Context, userID int) (string, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository
}

func New(db postgres.Client, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.TableName, db, otel),
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	_, err := repo.Write(ctx, "Insert", repo.Repository.Insert().Rows(user))

	return err
}

// LastID reads the id the sequence handed to the last insert of this session. The pool holds a
// single connection, so it is the same session the insert ran on.
func (repo *repositoryImpl) LastID(ctx context.Context) (int, error) {
	query := gRepo.Dialect.
		Select(goqu.Func(model.FuncCurrentValue, model.SequenceName).As(model.FieldID)).
		Prepared(true)

	result, err := repo.Read(ctx, "LastID", query)
	if err != nil {
		return 0, err
	}

	id, ok := result.Int()
	if !ok {
		return 0, failure.Statement(ErrNoLastID) //nolint:wrapcheck
	}

	return id, nil
}

func (repo *repositoryImpl) CountByCredentials(ctx context.Context, userID int, password string) (int, error) {
	query := repo.From().
		Select(goqu.C(model.FieldID)).
		Where(goqu.Ex{
			model.FieldID:       userID,
			model.FieldPassword: password,
		})

	return repo.Count(ctx, "CountByCredentials", query)
}

func (repo *repositoryImpl) GetPassword(ctx context.Context, userID int) (string, bool, error) {
	return repo.getField(ctx, "GetPassword", userID, model.FieldPassword)
}

func (repo *repositoryImpl) GetUserType(ctx context.Context, userID int) (string, bool, error) {
	return repo.getField(ctx, "GetUserType", userID, model.FieldUserType)
}

func (repo *repositoryImpl) getField(ctx context.Context, operation string, userID int, field string) (string, bool, error) {
	query := repo.From().
		Select(goqu.C(field)).
		Where(goqu.C(model.FieldID).Eq(userID))

	result, err := repo.Read(ctx, operation, query)
	if err != nil {
		return "", false, err
	}

	if result.Len() == 0 {
		return "", false, nil
	}

	return result.String(), true, nil
}
