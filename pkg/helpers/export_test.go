package helpers

var TimeAgo = timeAgo
