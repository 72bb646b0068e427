package model

// XpRecord is the experience state of a single user in a single guild.
// (GuildId, UserId) is the natural key.
type XpRecord struct {
	GuildId  string `bson:"guildId" json:"guildId"`
	UserId   string `bson:"userId" json:"userId"`
	UserName string `bson:"userName" json:"userName"`
	XpAmount int64  `bson:"xpAmount" json:"xpAmount"`

	// LastXp is the unix timestamp (seconds) of the last award.
	LastXp int64 `bson:"lastXp" json:"lastXp"`
}
