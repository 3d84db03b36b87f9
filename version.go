package slackstatus

// VERSION is the released version of slackstatus
const VERSION = "1.0.0"
