// Package procedure - реестр именованных процедур со схемой входа.
//
// Процедура декодирует сырой JSON во входную структуру, валидирует ее и только
// затем вызывает обработчик. Защищенные процедуры получают auth.Caller явно и
// без него не вызываются.
package procedure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"storefront/internal/auth"
	"storefront/internal/validator"
	"storefront/pkg/apperrors"

	"gorm.io/gorm"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Call - окружение одного вызова: соединение с БД (пул или транзакция)
// и вызывающий, если он аутентифицирован.
type Call struct {
	DB     *gorm.DB
	Caller *auth.Caller
}

type invokeFunc func(ctx context.Context, v *validator.Validator, call Call, input json.RawMessage) (any, error)

// Procedure - обработчик вместе со схемой входа
type Procedure struct {
	Kind      Kind
	Protected bool
	invoke    invokeFunc
}

// Query - публичная процедура чтения
func Query[In, Out any](h func(ctx context.Context, call Call, in *In) (Out, error)) Procedure {
	return public(KindQuery, h)
}

// Mutation - публичная процедура записи
func Mutation[In, Out any](h func(ctx context.Context, call Call, in *In) (Out, error)) Procedure {
	return public(KindMutation, h)
}

// ProtectedQuery - процедура чтения для аутентифицированного вызывающего
func ProtectedQuery[In, Out any](h func(ctx context.Context, call Call, caller auth.Caller, in *In) (Out, error)) Procedure {
	return protected(KindQuery, h)
}

// ProtectedMutation - процедура записи для аутентифицированного вызывающего
func ProtectedMutation[In, Out any](h func(ctx context.Context, call Call, caller auth.Caller, in *In) (Out, error)) Procedure {
	return protected(KindMutation, h)
}

func public[In, Out any](kind Kind, h func(ctx context.Context, call Call, in *In) (Out, error)) Procedure {
	return Procedure{
		Kind: kind,
		invoke: func(ctx context.Context, v *validator.Validator, call Call, input json.RawMessage) (any, error) {
			in, err := decodeInput[In](v, input)
			if err != nil {
				return nil, err
			}
			return h(ctx, call, in)
		},
	}
}

func protected[In, Out any](kind Kind, h func(ctx context.Context, call Call, caller auth.Caller, in *In) (Out, error)) Procedure {
	return Procedure{
		Kind:      kind,
		Protected: true,
		invoke: func(ctx context.Context, v *validator.Validator, call Call, input json.RawMessage) (any, error) {
			if call.Caller == nil || call.Caller.UserID == "" {
				return nil, apperrors.NewUnauthenticatedError("Authentication required")
			}
			in, err := decodeInput[In](v, input)
			if err != nil {
				return nil, err
			}
			return h(ctx, call, *call.Caller, in)
		},
	}
}

// decodeInput: пустой вход и null дают нулевое значение схемы, которое тоже валидируется.
func decodeInput[In any](v *validator.Validator, input json.RawMessage) (*In, error) {
	in := new(In)

	trimmed := bytes.TrimSpace(input)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		// лишние поля игнорируются
		if err := json.Unmarshal(trimmed, in); err != nil {
			return nil, apperrors.InputValidationError(map[string]string{"input": err.Error()}).WithError(err)
		}
	}

	if err := v.Validate(in); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.InputValidationError(vErr.Errors).WithError(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return in, nil
}
