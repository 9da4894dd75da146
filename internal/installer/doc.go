// Package installer downloads a skill's SKILL.md from the skills registry and
// writes it to <root>/.claude/skills/<id>/SKILL.md. It is the only component
// that writes to disk.
package installer
