package recordstore

import (
	"fmt"
	"strings"
)

// Формулы фильтрации хранилища — маленький язык выражений.
// Значения экранируются здесь, URL-кодирование делает listRecords.

// escapeFormulaValue экранирует строку для одинарных кавычек формулы
func escapeFormulaValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v
}

// fieldEquals строит проверку точного равенства поля строке
func fieldEquals(field, value string) string {
	return fmt.Sprintf("{%s} = '%s'", field, escapeFormulaValue(value))
}

// fieldEqualsFold строит регистронезависимую проверку равенства
func fieldEqualsFold(field, value string) string {
	return fmt.Sprintf("LOWER({%s}) = '%s'", field, escapeFormulaValue(strings.ToLower(value)))
}
