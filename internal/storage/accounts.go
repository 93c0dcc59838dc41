package storage

import (
	"database/sql"

	"github.com/AlexZinkM/desktop-wallet/internal/model"
)

// Accounts is the record store backed by the accounts table.
// The balance column is never read nor written: balances only live in memory.
type Accounts struct {
	h *Handle
}

// List returns all accounts ordered by id
func (a *Accounts) List() ([]model.Account, error) {
	var accounts []model.Account
	err := a.h.do(func(db *sql.DB) error {
		var err error
		accounts, err = listAccounts(db)
		return err
	})
	return accounts, err
}

// Count returns the number of stored accounts
func (a *Accounts) Count() (int, error) {
	var count int
	err := a.h.do(func(db *sql.DB) error {
		var err error
		count, err = countAccounts(db)
		return err
	})
	return count, err
}

// InsertNamed stores acc under the name returned by name, which receives the
// number of accounts stored before the insert. Counting, naming and inserting
// happen under a single lock acquisition, and the returned account carries the
// id assigned by the database.
func (a *Accounts) InsertNamed(acc model.Account, name func(count int) string) (model.Account, error) {
	err := a.h.do(func(db *sql.DB) error {
		count, err := countAccounts(db)
		if err != nil {
			return err
		}
		acc.Name = name(count)

		res, err := db.Exec(
			`INSERT INTO accounts (name, seed, pubkey, passphrase) VALUES (?, ?, ?, ?)`,
			acc.Name, acc.SeedPhrase, acc.PublicKey, acc.Passphrase,
		)
		if err != nil {
			return queryErr("insert account", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return queryErr("last insert id", err)
		}
		acc.ID = id
		return nil
	})
	if err != nil {
		return model.Account{}, err
	}
	return acc, nil
}

func countAccounts(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, queryErr("count accounts", err)
	}
	return count, nil
}

func listAccounts(db *sql.DB) ([]model.Account, error) {
	rows, err := db.Query(`SELECT id, name, seed, pubkey, passphrase FROM accounts ORDER BY id ASC`)
	if err != nil {
		return nil, queryErr("list accounts", err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0, 4)
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.SeedPhrase, &acc.PublicKey, &acc.Passphrase); err != nil {
			return nil, queryErr("scan account", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("iterate accounts", err)
	}
	return accounts, nil
}
