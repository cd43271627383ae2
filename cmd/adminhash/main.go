// Command adminhash prints the ADMIN_* environment lines for an administrator password.
//
//	adminhash -email admin@example.com -password 's3cret'
package main

import (
	"flag"
	"fmt"
	"os"

	"scanpoints/internal/adapters/auth"
)

func main() {
	emailAddr := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password")
	flag.Parse()

	if *emailAddr == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	creds, err := auth.NewAdminCredentials(auth.NewBcryptHasher(0), *emailAddr, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adminhash: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ADMIN_EMAIL=%s\n", creds.Email)
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", creds.PasswordHash)
	fmt.Printf("ADMIN_PASSWORD_SALT=%s\n", creds.Salt)
}
