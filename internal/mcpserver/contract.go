package mcpserver

// MemoFormatContract describes how memos land in daily notes so LLM
// consumers can phrase and read them correctly.
const MemoFormatContract = `# Memo Format

Each memo is one Markdown list item prefixed with the local capture time:

` + "```" + `markdown
- 14:05 Called the dentist, appointment moved to Friday
` + "```" + `

## Placement

1. The daily note path is ` + "`" + `<folder>/<date>.md` + "`" + ` inside the vault, where
   ` + "`" + `folder` + "`" + ` and the date format come from the Daily Notes core plugin
   (` + "`" + `.obsidian/daily-notes.json` + "`" + `). Only the YYYY, MM and DD tokens are
   supported; other formats fall back to ` + "`" + `YYYY-MM-DD` + "`" + `.
2. If the Thino plugin sets ` + "`" + `InsertAfter` + "`" + ` (for example ` + "`" + `# Memos` + "`" + `),
   the memo goes at the end of that section, before the next heading of the
   same or a shallower level. Deeper subheadings stay inside the section.
3. Without ` + "`" + `InsertAfter` + "`" + `, or when the heading is missing, the memo is
   appended at the end of the note.
4. A missing note is created, seeded with the ` + "`" + `InsertAfter` + "`" + ` heading if set.

## Rules

- Memo text is a single line. Line breaks are rejected.
- Existing note content is never modified; a memo only adds bytes.
- Timestamps are 24-hour ` + "`" + `HH:MM` + "`" + ` in the machine's local time zone.
`
