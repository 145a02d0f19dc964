/*
Package operation implements the file processing drivers for cssvar.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Convert   |
	| (Transform) |
	+------+------+

🎯 Purpose:
  - Orchestrates reading, converting, backing up and rewriting stylesheets
  - Keeps per-file failures local: missing targets and no-op files are
    skipped without failing the run
  - Delegates file access and tracking to the status package

🔄 Flow:
1. Resolves the target list from config
2. Applies the mapping table to each file in list order
3. Backs up and overwrites files that changed
4. Reports per-file outcomes and the grand total

⚡ Operations:
- ConvertOperation: the rewrite driver
- StatusOperation: dry run, reports pending replacements
- RestoreOperation: copies backups back over the originals

The Runner executes operations synchronously in order by default; async
execution is opt-in and runs them through an errgroup.
*/
package operation
