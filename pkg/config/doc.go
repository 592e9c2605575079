/*
Package config loads everything lessoncopy needs to know before it touches the
filesystem.

	            +-------------+
	            |   config    |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+            +------+------+
	|    Env    |            | Conventions |
	| (.env +   |            | (YAML, HCL, |
	|  process) |            |  JSON)      |
	+-----------+            +-------------+

🎯 Purpose:
- Env carries the three required roots (LESSON_PLANS_ROOT, CURRICULUM_ROOT,
  CLASS_REPO_ROOT). A dotenv file is read first, then the process
  environment is decoded with envconfig.
- Conventions carries the naming conventions of the curriculum layout. The
  file is optional and every value has a default.

⚡ Missing variables are reported all at once through MissingEnvError, one
line per variable, so the operator can fix the environment in a single pass.

🔍 Example:

	env, err := config.LoadEnv(ctx, ".env", false)
	if err != nil {
		var merr *config.MissingEnvError
		if errors.As(err, &merr) {
			for _, line := range merr.Lines() {
				fmt.Fprintln(os.Stderr, line)
			}
		}
		return err
	}

	conv, err := config.LoadConventions(ctx, ".lessoncopy.yaml", false)
*/
package config
