package gqlpager

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/samber/lo"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Query regexp fragments matching both dialects.
const (
	_quote       = "[`'\"]"
	_placeholder = "(?:\\$\\d|\\?)"
)

var _sqlMockFnList = []func() (string, *gorm.DB, sqlmock.Sqlmock, error){
	newGORMMySQLMock,
	newGORMPostgresMock,
}

type tUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func userRows(users ...tUser) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "age"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Age)
	}

	return rows
}

func idsOf(users []tUser) []uint {
	return lo.Map(users, func(u tUser, _ int) uint { return u.ID })
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return newGORMMock("mysql", func(conn *sql.DB) gorm.Dialector {
		return mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return newGORMMock("postgres", func(conn *sql.DB) gorm.Dialector {
		return postgres.New(postgres.Config{Conn: conn})
	})
}

func newGORMMock(dialect string, dialector func(*sql.DB) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		return dialect, nil, nil, err
	}

	db, err := gorm.Open(dialector(conn), &gorm.Config{})
	if err != nil {
		return dialect, nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}
