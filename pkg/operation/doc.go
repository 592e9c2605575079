/*
Package operation implements the two copies a class needs over a module's life.

	+------------------+        +-------------------+
	|    curriculum    |        |    class repo     |
	|  01-Class-Content|  ====> |   <module>/...    |
	+------------------+        +-------------------+
	         |                           ^
	         |  CopyModule               |  CopySolutions
	         |  (solutions stripped)     |  (scheduled activities only)
	         +---------------------------+

🎯 Purpose:
- CopyModule publishes a whole module with every solved, main and
  node_modules folder and every dotenv file left behind
- CopySolutions restores the solved and main folders of the activities one
  day's lesson plan schedules, plus the solved algorithms on algorithms day

🔄 Flow:
1. Resolve the curriculum module by the prefix of the selected lesson-plan module
2. Build the copier filters for the copy
3. Walk the module and hand each subtree to the copier
4. Return the per-file summary the copier reported

⚠️ Preconditions:
CopySolutions refuses to run until CopyModule has created the module folder
in the class repo and returns a *ModuleNotCopiedError without writing
anything.

🔍 Example:

	orch, err := operation.New(operation.Options{Layout: layout})
	result, err := orch.CopySolutions(ctx, sel, records)
	fmt.Println(result.Summary)
*/
package operation
