package logger

const lineEnding = "\r\n"
