package storage

import (
	"bytes"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// DecodeBSON декодирует документ. Вложенные документы в полях any становятся map.
func DecodeBSON(raw []byte, out any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()

	return dec.Decode(out)
}

// DecodeExtJSON декодирует документ в формате relaxed Extended JSON
func DecodeExtJSON(data []byte, out any) error {
	vr, err := bsonrw.NewExtJSONValueReader(bytes.NewReader(data), false)
	if err != nil {
		return err
	}

	dec, err := bson.NewDecoder(vr)
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()

	return dec.Decode(out)
}

// EncodeExtJSON кодирует значение в relaxed Extended JSON: ObjectID и даты
// сохраняют тип, остальные поля остаются обычным JSON.
func EncodeExtJSON(v any) ([]byte, error) {
	return bson.MarshalExtJSON(v, false, false)
}

// DecodeAll декодирует документы в out, который должен быть указателем на срез
func DecodeAll(docs [][]byte, out any, decode func([]byte, any) error) error {
	const op = "storage.DecodeAll"

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%s: out must be a pointer to a slice, got %T", op, out)
	}

	sliceType := rv.Elem().Type()
	result := reflect.MakeSlice(sliceType, 0, len(docs))

	for _, doc := range docs {
		elem := reflect.New(sliceType.Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		result = reflect.Append(result, elem.Elem())
	}

	rv.Elem().Set(result)

	return nil
}
