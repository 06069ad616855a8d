// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/models"
)

const usersTable = "users"

// userColumns is the column order every SELECT and RETURNING clause uses;
// scanUser depends on it.
var userColumns = []string{
	models.FieldID,
	models.FieldFirstName,
	models.FieldLastName,
	models.FieldGames,
}

const returningUser = "RETURNING id, first_name, last_name, games"

// userQueries builds the statements of the users table for one SQL dialect.
// Values are always bound as parameters.
type userQueries struct {
	builder sq.StatementBuilderType
}

func newUserQueries(format sq.PlaceholderFormat) userQueries {
	return userQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q userQueries) selectAll() (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy(models.FieldID).
		ToSql()
}

func (q userQueries) selectByID(id int64) (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
}

func (q userQueries) insert(user models.User) (string, []any, error) {
	return q.builder.
		Insert(usersTable).
		Columns(models.FieldFirstName, models.FieldLastName, models.FieldGames).
		Values(user.FirstName, user.LastName, string(user.Games)).
		Suffix(returningUser).
		ToSql()
}

func (q userQueries) update(user models.User) (string, []any, error) {
	return q.builder.
		Update(usersTable).
		Set(models.FieldFirstName, user.FirstName).
		Set(models.FieldLastName, user.LastName).
		Set(models.FieldGames, string(user.Games)).
		Where(sq.Eq{models.FieldID: user.ID}).
		Suffix(returningUser).
		ToSql()
}

func (q userQueries) delete(id int64) (string, []any, error) {
	return q.builder.
		Delete(usersTable).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
}
