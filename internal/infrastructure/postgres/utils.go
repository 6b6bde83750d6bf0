package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE usados para traducir errores a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgErrorCode(err) == codeUniqueViolation }

func isForeignKeyViolation(err error) bool { return pgErrorCode(err) == codeForeignKeyViolation }

func isCheckViolation(err error) bool { return pgErrorCode(err) == codeCheckViolation }

// isNoRows cubre también ids con formato inválido (22P02): para el llamador equivalen a "no existe".
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == codeInvalidText
}
