package datasource

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// UserGenerator builds users from a shared faker and checks their emails.
type UserGenerator struct {
	faker        *gofakeit.Faker
	validate     *validator.Validate
	engineerings []string
}

func NewUserGenerator(faker *gofakeit.Faker) *UserGenerator {
	return &UserGenerator{
		faker:    faker,
		validate: validator.New(),
		engineerings: lo.Map(model.Engineerings, func(e model.Engineering, _ int) string {
			return string(e)
		}),
	}
}

// Generate builds one user with the given id. It never fails.
func (g *UserGenerator) Generate(id int) model.User {
	name := g.faker.FirstName()
	lastName := g.faker.LastName()

	return model.User{
		ID:          id,
		Name:        name,
		LastName:    lastName,
		Age:         g.faker.IntRange(model.MinAge, model.MaxAge),
		Email:       g.email(name, lastName),
		Engineering: model.Engineering(g.faker.RandomString(g.engineerings)),
	}
}

// email prefers the faker's address. Its word lists occasionally produce
// characters a mail validator rejects (apostrophes in a domain label), in
// which case the address is rebuilt from the user's own name.
func (g *UserGenerator) email(name, lastName string) string {
	email := g.faker.Email()
	if g.validate.Var(email, "required,email") == nil {
		return email
	}

	return fmt.Sprintf("%s.%s%d@example.com", mailbox(name), mailbox(lastName), g.faker.IntRange(1, 99))
}

func mailbox(s string) string {
	local := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)

	if local == "" {
		return "user"
	}
	return local
}
