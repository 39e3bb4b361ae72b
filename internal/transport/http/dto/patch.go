package dto

import (
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// patchOf собирает изменяемые поля запроса: каждое ненулевое поле-указатель
// попадает в результат под своим json-именем.
func patchOf(req any) map[string]any {
	v := reflect.Indirect(reflect.ValueOf(req))
	t := v.Type()

	patch := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if field.Type.Kind() != reflect.Pointer || value.IsNil() {
			continue
		}

		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		patch[name] = value.Elem().Interface()
	}

	return patch
}

// objectIDPtr пустая строка означает отсутствие ссылки
func objectIDPtr(hex string) *primitive.ObjectID {
	if hex == "" {
		return nil
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil
	}

	return &id
}

func orTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
