package httpapp_test

import (
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func primitiveHex() string {
	return primitive.NewObjectID().Hex()
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
