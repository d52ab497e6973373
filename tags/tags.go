package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Platform = donburi.NewTag().SetName("Platform")
	Ground   = donburi.NewTag().SetName("Ground")
	Block    = donburi.NewTag().SetName("Block")
)

// Resolv tags for collision objects
const (
	ResolvSolid  = "solid"
	ResolvGround = "ground"
	ResolvBlock  = "block"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
