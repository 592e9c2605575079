/*
Package status records what a copy did to each destination node.

	+-----------+      FileEntry      +-----------+
	|  copier   | ------------------> | Reporter  |
	+-----------+                     +-----+-----+
	                                        |
	                         +--------------+--------------+
	                         |                             |
	                   +-----+-----+                 +-----+-----+
	                   |  Tracker  |                 |  console  |
	                   | (summary) |                 | (pkg/log) |
	                   +-----------+                 +-----------+

🎯 Purpose:
- Classify every file a copy touches as new, modified, unchanged or skipped
- Collect those outcomes so commands can print a summary
- Fan entries out to several reporters with Tee

The package does no I/O of its own. The copier decides the status, the
reporters decide how to show it.
*/
package status
