package emoji

// Emojis exposes emojis to tests
var Emojis = emojis
