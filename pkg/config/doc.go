/*
Package config manages configuration parsing and validation for notepaste.

	            +-------------+
	            |  Settings   |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+
	                   |
	            +------+------+
	            | env overrides|
	            +-------------+

🎯 Purpose:
- Loads .notepaste.{yaml,yml,json,hcl} from the vault or an explicit path
- Overrides credentials from the environment
- Validates values and applies defaults

🔄 Flow:
1. Find the config file (or use the one given)
2. Parse with the registered parser for its extension
3. Apply CLOUDINARY_*, GITHUB_TOKEN and NOTEPASTE_S3_* overrides
4. Validate and hand the Settings to the operations

📝 Unknown keys are errors in every format. Settings are never global:
every command receives its own *Settings.

🔍 Example:

	s, err := config.Load(ctx, "", vaultDir)
	if err != nil {
		return err
	}
	if s.ReplaceEmbeds && !s.HasAssetCredentials() {
		// embed sync is skipped
	}
*/
package config
