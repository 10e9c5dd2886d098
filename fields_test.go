package salt

import (
	"context"
	"errors"
	"testing"
)

type fieldsUser struct {
	ID       string
	Password string `salt.digest:"SHA-256"`
	Token    []byte `salt.digest:"sha-1"`
	Note     string
}

type badAlgoUser struct {
	Password string `salt.digest:"SHA-3"`
}

type badKindUser struct {
	Age int `salt.digest:"MD5"`
}

func TestEncodeFields(t *testing.T) {
	ResetFields()
	c, _ := New()

	u := &fieldsUser{ID: "1", Password: "secret", Token: []byte("tok"), Note: "note"}
	n, err := EncodeFields(context.Background(), c, u)
	if err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}
	if n != 2 {
		t.Errorf("EncodeFields() = %d, want 2", n)
	}

	if u.ID != "1" || u.Note != "note" {
		t.Errorf("untagged fields changed: %+v", u)
	}
	if l := len(u.Password) - 64; l < 16 || l > 32 {
		t.Errorf("Password salt length = %d", l)
	}
	if l := len(u.Token) - 40; l < 16 || l > 32 {
		t.Errorf("Token salt length = %d", l)
	}

	ok, err := Verify("secret", u.Password, "SHA-256")
	if err != nil || !ok {
		t.Errorf("Verify(Password) = %v, %v; want true, nil", ok, err)
	}
}

func TestEncodeFields_SkipsEmpty(t *testing.T) {
	ResetFields()
	c, _ := New()

	u := &fieldsUser{Password: "secret"}
	n, err := EncodeFields(context.Background(), c, u)
	if err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}
	if n != 1 {
		t.Errorf("EncodeFields() = %d, want 1", n)
	}
	if u.Token != nil {
		t.Errorf("Token = %q, empty fields must be left alone", u.Token)
	}
}

func TestVerifyField(t *testing.T) {
	ResetFields()
	c, _ := New()
	ctx := context.Background()

	u := &fieldsUser{Password: "secret", Token: []byte("tok")}
	if _, err := EncodeFields(ctx, c, u); err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}

	tests := []struct {
		field     string
		plaintext string
		want      bool
	}{
		{"Password", "secret", true},
		{"Password", "Secret", false},
		{"Token", "tok", true},
		{"Token", "secret", false},
	}

	for _, tt := range tests {
		ok, err := VerifyField(ctx, c, u, tt.field, tt.plaintext)
		if err != nil {
			t.Fatalf("VerifyField(%s) error: %v", tt.field, err)
		}
		if ok != tt.want {
			t.Errorf("VerifyField(%s, %q) = %v, want %v", tt.field, tt.plaintext, ok, tt.want)
		}
	}
}

func TestVerifyField_UnknownField(t *testing.T) {
	ResetFields()
	c, _ := New()

	for _, name := range []string{"Note", "Missing"} {
		_, err := VerifyField(context.Background(), c, &fieldsUser{}, name, "x")
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("VerifyField(%s) error = %v, want ErrUnknownField", name, err)
		}
	}
}

func TestVerifyField_NotEncoded(t *testing.T) {
	ResetFields()
	c, _ := New()

	_, err := VerifyField(context.Background(), c, &fieldsUser{Password: "short"}, "Password", "short")
	if !errors.Is(err, ErrMalformedEncodedValue) {
		t.Errorf("VerifyField() error = %v, want ErrMalformedEncodedValue", err)
	}
}

func TestEncodeFields_InvalidTags(t *testing.T) {
	ResetFields()
	c, _ := New()

	_, err := EncodeFields(context.Background(), c, &badAlgoUser{Password: "x"})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("bad algorithm error = %v, want ErrInvalidTag", err)
	}

	_, err = EncodeFields(context.Background(), c, &badKindUser{Age: 3})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("bad kind error = %v, want ErrInvalidTag", err)
	}
}

func TestEncodeFields_NotStruct(t *testing.T) {
	c, _ := New()
	s := "plain"

	if _, err := EncodeFields(context.Background(), c, &s); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("EncodeFields(*string) error = %v, want ErrInvalidTag", err)
	}
}

func TestEncodeFields_EncodeFailure(t *testing.T) {
	ResetFields()
	c, _ := New(WithSaltGenerator(failingGenerator{}))

	_, err := EncodeFields(context.Background(), c, &fieldsUser{Password: "secret"})
	if !errors.Is(err, ErrEncode) {
		t.Errorf("EncodeFields() error = %v, want ErrEncode", err)
	}
}

func TestGetOrBuildPlans_Caching(t *testing.T) {
	ResetFields()

	p1, err := getOrBuildPlans[fieldsUser]()
	if err != nil {
		t.Fatalf("getOrBuildPlans() error: %v", err)
	}
	p2, _ := getOrBuildPlans[fieldsUser]()
	if p1 != p2 {
		t.Error("getOrBuildPlans() should return cached plans")
	}

	ResetFields()
	p3, _ := getOrBuildPlans[fieldsUser]()
	if p1 == p3 {
		t.Error("ResetFields() should clear cache, new plans expected")
	}

	if len(p3.fields) != 2 {
		t.Errorf("plans = %d fields, want 2", len(p3.fields))
	}
}

func TestEncodeFields_Nil(t *testing.T) {
	c, _ := New()

	if _, err := EncodeFields[fieldsUser](context.Background(), c, nil); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("EncodeFields(nil) error = %v, want ErrInvalidTag", err)
	}
	if _, err := VerifyField[fieldsUser](context.Background(), c, nil, "Password", "x"); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("VerifyField(nil) error = %v, want ErrInvalidTag", err)
	}
}

type fieldsCredentials struct {
	Secret string `salt.digest:"SHA-512"`
}

type fieldsProfile struct {
	Name   string
	Login  fieldsCredentials
	Backup *fieldsCredentials
}

type fieldsNode struct {
	Key  string `salt.digest:"MD5"`
	Next *fieldsNode
}

type badNestedUser struct {
	Login struct {
		Secret string `salt.digest:"SHA-3"`
	}
}

func TestEncodeFields_Nested(t *testing.T) {
	ResetFields()
	c, _ := New()
	ctx := context.Background()

	p := &fieldsProfile{
		Name:   "ada",
		Login:  fieldsCredentials{Secret: "inner"},
		Backup: &fieldsCredentials{Secret: "backup"},
	}
	n, err := EncodeFields(ctx, c, p)
	if err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}
	if n != 2 {
		t.Errorf("EncodeFields() = %d, want 2", n)
	}
	if p.Name != "ada" {
		t.Errorf("Name = %q, untagged field changed", p.Name)
	}

	tests := []struct {
		field     string
		plaintext string
		want      bool
	}{
		{"Login.Secret", "inner", true},
		{"Login.Secret", "backup", false},
		{"Backup.Secret", "backup", true},
	}
	for _, tt := range tests {
		ok, err := VerifyField(ctx, c, p, tt.field, tt.plaintext)
		if err != nil {
			t.Fatalf("VerifyField(%s) error: %v", tt.field, err)
		}
		if ok != tt.want {
			t.Errorf("VerifyField(%s, %q) = %v, want %v", tt.field, tt.plaintext, ok, tt.want)
		}
	}
}

func TestEncodeFields_NilNestedPointer(t *testing.T) {
	ResetFields()
	c, _ := New()

	p := &fieldsProfile{Login: fieldsCredentials{Secret: "inner"}}
	n, err := EncodeFields(context.Background(), c, p)
	if err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}
	if n != 1 {
		t.Errorf("EncodeFields() = %d, want 1", n)
	}
	if p.Backup != nil {
		t.Error("nil pointer field should stay nil")
	}

	_, err = VerifyField(context.Background(), c, p, "Backup.Secret", "x")
	if !errors.Is(err, ErrMalformedEncodedValue) {
		t.Errorf("VerifyField(nil path) error = %v, want ErrMalformedEncodedValue", err)
	}
}

func TestEncodeFields_SelfReference(t *testing.T) {
	ResetFields()
	c, _ := New()

	node := &fieldsNode{Key: "k", Next: &fieldsNode{Key: "unvisited"}}
	n, err := EncodeFields(context.Background(), c, node)
	if err != nil {
		t.Fatalf("EncodeFields() error: %v", err)
	}
	if n != 1 {
		t.Errorf("EncodeFields() = %d, want 1", n)
	}
	if node.Next.Key != "unvisited" {
		t.Errorf("Next.Key = %q, recursive types are not descended", node.Next.Key)
	}
}

func TestEncodeFields_InvalidNestedTag(t *testing.T) {
	ResetFields()
	c, _ := New()

	_, err := EncodeFields(context.Background(), c, &badNestedUser{})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("EncodeFields() error = %v, want ErrInvalidTag", err)
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "Login.Secret" {
		t.Errorf("error should name Login.Secret, got %v", err)
	}
}
