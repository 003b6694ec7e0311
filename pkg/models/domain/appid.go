package domain

// AppID identifies a Steam app with a community market. The constants below
// are a short, incomplete list of well-known catalogs; any positive integer
// is accepted by the market endpoint, so no validation is performed against
// this set.
type AppID int

const (
	AppTF2        AppID = 440    // Team Fortress 2
	AppDota2      AppID = 570    // Dota 2
	AppCSGO       AppID = 730    // Counter-Strike: Global Offensive
	AppSteam      AppID = 753    // Steam
	AppDontStarve AppID = 219740 // Don't Starve
	AppKF2        AppID = 232090 // Killing Floor 2
	AppSteamVR    AppID = 250820 // SteamVR
	AppRust       AppID = 252490 // Rust
	AppUnturned   AppID = 304930 // Unturned
	AppDST        AppID = 322330 // Don't Starve Together
	AppPUBG       AppID = 578080 // PLAYERUNKNOWN'S BATTLEGROUNDS
)
