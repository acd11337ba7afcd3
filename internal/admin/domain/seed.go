package domain

import "time"

// SeedAccounts returns the default admin accounts inserted when the admins
// key is empty. hash is applied to the shared starter password so the seed
// never stores plaintext.
func SeedAccounts(now time.Time, hash func(string) (string, error)) ([]Account, error) {
	password, err := hash("123456")
	if err != nil {
		return nil, err
	}

	return []Account{
		{
			ID:        "1",
			FirstName: "Elisabete",
			LastName:  "Ambrósio",
			Email:     "elisabete@lisbeauty.ao",
			Phone:     "927194654",
			Password:  password,
			Role:      RoleAdmin,
			CreatedAt: now,
			Active:    true,
		},
		{
			ID:        "2",
			FirstName: "Erikson",
			LastName:  "Teixeira",
			Email:     "erikson@lisbeauty.ao",
			Phone:     "949100325",
			Password:  password,
			Role:      RoleAdmin,
			CreatedAt: now,
			Active:    true,
		},
	}, nil
}
