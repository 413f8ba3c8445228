package constants

// SessionFileName — фиксированный ключ, под которым хранится сессия
const SessionFileName = "session.json"
