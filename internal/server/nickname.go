package server

import (
	"math/rand/v2"
)

// 昵称词库
var (
	adjectives = []string{
		"Brave", "Clever", "Happy", "Sneaky", "Mighty",
		"Gentle", "Swift", "Quiet", "Bold", "Lucky",
		"Witty", "Calm", "Fierce", "Sly", "Dashing",
		"Shiny", "Curious", "Nimble", "Stubborn", "Cheery",
	}

	nouns = []string{
		"Otter", "Panda", "Tiger", "Lion", "Monkey",
		"Rabbit", "Fox", "Dolphin", "Penguin", "Koala",
		"Corgi", "Shiba", "Badger", "Chinchilla", "Hamster",
		"Hedgehog", "Squirrel", "Raccoon", "Heron", "Alpaca",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return adj + noun
}
