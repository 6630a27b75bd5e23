// Command hashkey prints the bcrypt hash to put in ADMIN_KEY_HASH.
// Without an argument it generates a new admin key and prints it too.
package main

import (
	"fmt"
	"log"
	"os"

	passwordservice "github.com/mikiasgoitom/votetally/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/votetally/internal/infrastructure/random_generator"
)

func main() {
	var key string
	switch len(os.Args) {
	case 1:
		generated, err := randomgenerator.NewRandomGenerator().GenerateRandomToken(32)
		if err != nil {
			log.Fatalf("failed to generate admin key: %v", err)
		}
		key = generated
		fmt.Printf("ADMIN_KEY=%s\n", key)
	case 2:
		key = os.Args[1]
	default:
		log.Fatalf("usage: %s [admin-key]", os.Args[0])
	}

	hash, err := passwordservice.NewHasher().HashSecret(key)
	if err != nil {
		log.Fatalf("failed to hash admin key: %v", err)
	}
	fmt.Printf("ADMIN_KEY_HASH=%s\n", hash)
}
