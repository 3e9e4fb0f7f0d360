package service

import (
	"strconv"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// Помощники частичного обновления: nil во входных данных означает «не передано»,
// такое поле остаётся прежним.

func apply[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// applyNonEmpty не даёт затереть обязательное поле пустой строкой.
func applyNonEmpty(field string, dst *string, v *string) error {
	if v == nil {
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return apperror.Validation("поле %s не может быть пустым", field)
	}
	*dst = strings.TrimSpace(*v)
	return nil
}

// applyOptional пустая строка очищает необязательное поле.
func applyOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	s := *v
	*dst = &s
}

// applyDate нераспознанная дата сохраняется как отсутствующая.
func applyDate(dst **models.Date, v *string) {
	if v == nil {
		return
	}
	d, ok := models.ParseDate(*v)
	if !ok {
		*dst = nil
		return
	}
	*dst = &d
}

func applyList(dst *models.StringList, v *[]string) {
	if v == nil {
		return
	}
	list := make(models.StringList, len(*v))
	copy(list, *v)
	*dst = list
}

// required проверяет обязательное поле при создании.
func required(field string, v *string) error {
	if err := validation.ValidateRequired(field, v); err != nil {
		return apperror.Validation("%s", err.Error())
	}
	return nil
}

// parseIntID разбирает числовой идентификатор из пути.
// Нечисловой идентификатор означает, что такой записи нет.
func parseIntID(id string, notFound error) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, notFound
	}
	return n, nil
}

// applyOwner переназначает запись другому пользователю. Существование проверяет хранилище.
func applyOwner(dst **int64, v *int64) {
	if v == nil {
		return
	}
	id := *v
	*dst = &id
}
