package utils

// REVISION is reported in every API response envelope.
const REVISION = "v1.2.0"
