// Package render produces generated artifacts from a classified schema.Catalog.
package render

import (
	"bytes"
	"fmt"

	"github.com/titpetric/athena-gen/naming"
	"github.com/titpetric/athena-gen/schema"
)

const stackHeader = "/*\n" +
	"* Copyright Amazon.com and its affiliates; all rights reserved.\n" +
	"* SPDX-License-Identifier: LicenseRef-.amazon.com.-AmznSL-1.0\n" +
	"* Licensed under the Amazon Software License  https://aws.amazon.com/asl/\n" +
	"*/\n" +
	"\n" +
	"import * as path from \"path\";\n" +
	"import { Stack, StackProps, RemovalPolicy, CfnOutput } from \"aws-cdk-lib\";\n" +
	"import * as glue from \"aws-cdk-lib/aws-glue\";\n" +
	"import * as s3 from \"aws-cdk-lib/aws-s3\";\n" +
	"import * as s3deploy from \"aws-cdk-lib/aws-s3-deployment\";\n" +
	"import { Construct } from \"constructs\";\n" +
	"\n" +
	"interface AthenaStackProps extends StackProps {\n" +
	"  ACCESS_LOG_BUCKET: s3.Bucket;\n" +
	"}\n" +
	"\n" +
	"export class AthenaStack extends Stack {\n" +
	"  public readonly ATHENA_OUTPUT_BUCKET: s3.Bucket;\n" +
	"  public readonly ATHENA_DATA_BUCKET: s3.Bucket;\n"

var stackConstructor = "\n" +
	"  constructor(scope: Construct, id: string, props: AthenaStackProps) {\n" +
	"    super(scope, id, props);\n" +
	"\n" +
	"    // Create S3 buckets for Athena\n" +
	bucketBlock("ATHENA_DATA_BUCKET", "AthenaDataBucket", DataBucketPattern, "athena-data-bucket-logs/") +
	"\n" +
	bucketBlock("ATHENA_OUTPUT_BUCKET", "AthenaOutputBucket", OutputBucketPattern, "athena-output-bucket-logs/")

const stackOutputs = "\n" +
	"    // Outputs\n" +
	"    new CfnOutput(this, \"AthenaDataBucketName\", {\n" +
	"      value: this.ATHENA_DATA_BUCKET.bucketName,\n" +
	"      description: \"Athena Data Bucket Name\",\n" +
	"    });\n" +
	"\n" +
	"    new CfnOutput(this, \"AthenaOutputBucketName\", {\n" +
	"      value: this.ATHENA_OUTPUT_BUCKET.bucketName,\n" +
	"      description: \"Athena Output Bucket Name\",\n" +
	"    });\n"

const stackFooter = "  }\n" +
	"}\n"

// Bucket name patterns, resolved at deploy time
const (
	DataBucketPattern   = "sl-data-store-${this.account}-${this.region}"
	OutputBucketPattern = "sl-athena-output-${this.account}-${this.region}"
)

func bucketBlock(field, id, pattern, logPrefix string) string {
	return "    this." + field + " = new s3.Bucket(this, \"" + id + "\", {\n" +
		"      bucketName: `" + pattern + "`,\n" +
		"      enforceSSL: true,\n" +
		"      versioned: true,\n" +
		"      encryption: s3.BucketEncryption.S3_MANAGED,\n" +
		"      removalPolicy: RemovalPolicy.DESTROY,\n" +
		"      autoDeleteObjects: true,\n" +
		"      blockPublicAccess: s3.BlockPublicAccess.BLOCK_ALL,\n" +
		"      serverAccessLogsBucket: props.ACCESS_LOG_BUCKET,\n" +
		"      serverAccessLogsPrefix: \"" + logPrefix + "\",\n" +
		"    });\n"
}

// Stack renders the Athena stack source for a catalog
func Stack(c *schema.Catalog) string {
	buf := bytes.NewBufferString(stackHeader)

	databases := c.Databases()
	tables := c.TableKeys()

	// field declarations
	for _, database := range databases {
		fmt.Fprintf(buf, "  public readonly %s: glue.CfnDatabase;\n", naming.DatabaseField(database))
	}

	buf.WriteString(stackConstructor)

	// sample data uploads
	for _, key := range tables {
		fmt.Fprintf(buf, "\n    // Upload a sample csv file for %s table\n", quote(key.Table))
		fmt.Fprintf(buf, "    new s3deploy.BucketDeployment(this, \"%s\", {\n", quote(naming.DeployConstruct(key.Table)))
		buf.WriteString("      sources: [\n")
		fmt.Fprintf(buf, "        s3deploy.Source.asset(path.join(__dirname, \"..\", \"..\", \"assets\", \"%s\", \"%s\")),\n", quote(key.Database), quote(key.Table))
		buf.WriteString("      ],\n")
		buf.WriteString("      destinationBucket: this.ATHENA_DATA_BUCKET,\n")
		fmt.Fprintf(buf, "      destinationKeyPrefix: \"%s/%s\",\n", quote(key.Database), quote(key.Table))
		buf.WriteString("    });\n")
	}

	// databases
	for _, database := range databases {
		buf.WriteString("\n    // Create Athena Database\n")
		fmt.Fprintf(buf, "    this.%s = new glue.CfnDatabase(this, \"%s\", {\n", naming.DatabaseField(database), quote(naming.DatabaseConstruct(database)))
		buf.WriteString("      catalogId: this.account,\n")
		buf.WriteString("      databaseInput: {\n")
		fmt.Fprintf(buf, "        name: \"%s\",\n", quote(database))
		buf.WriteString("      },\n")
		buf.WriteString("    });\n")
	}

	// tables
	for _, key := range tables {
		renderTable(buf, key, c.Columns(key))
	}

	buf.WriteString(stackOutputs)

	if first, ok := c.First(); ok {
		id := naming.Identifier(first)
		fmt.Fprintf(buf, "\n    new CfnOutput(this, \"%sDatabaseName\", {\n", quote(id))
		fmt.Fprintf(buf, "      value: this.%s.ref,\n", naming.DatabaseField(first))
		fmt.Fprintf(buf, "      description: \"%s Database Name\",\n", quote(id))
		buf.WriteString("    });\n")
	}

	buf.WriteString(stackFooter)
	return buf.String()
}

func renderTable(buf *bytes.Buffer, key schema.TableKey, columns []schema.Column) {
	fmt.Fprintf(buf, "\n    new glue.CfnTable(this, \"%s\", {\n", quote(naming.TableConstruct(key.Table)))
	buf.WriteString("      catalogId: this.account,\n")
	fmt.Fprintf(buf, "      databaseName: \"%s\",\n", quote(key.Database))
	buf.WriteString("      tableInput: {\n")
	fmt.Fprintf(buf, "        name: \"%s\",\n", quote(key.Table))
	buf.WriteString("        storageDescriptor: {\n")
	buf.WriteString("          columns: [\n")
	for idx, column := range columns {
		buf.WriteString("            {\n")
		fmt.Fprintf(buf, "              name: \"%s\",\n", quote(column.Name))
		fmt.Fprintf(buf, "              type: \"%s\",\n", quote(column.Type))
		fmt.Fprintf(buf, "              comment: \"%s\",\n", quote(column.Comment))
		buf.WriteString("            }")
		if idx < len(columns)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("          ],\n")
	fmt.Fprintf(buf, "          location: `s3://${this.ATHENA_DATA_BUCKET.bucketName}/%s/%s`,\n", templateQuote(key.Database), templateQuote(key.Table))
	buf.WriteString("          inputFormat: \"org.apache.hadoop.mapred.TextInputFormat\",\n")
	buf.WriteString("          outputFormat: \"org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat\",\n")
	buf.WriteString("          serdeInfo: {\n")
	buf.WriteString("            serializationLibrary: \"org.apache.hadoop.hive.serde2.lazy.LazySimpleSerDe\",\n")
	buf.WriteString("            parameters: {\n")
	buf.WriteString("              \"field.delim\": \",\",\n")
	buf.WriteString("              \"line.delim\": \"\\n\",\n")
	buf.WriteString("            },\n")
	buf.WriteString("          },\n")
	buf.WriteString("        },\n")
	buf.WriteString("        tableType: \"EXTERNAL_TABLE\",\n")
	buf.WriteString("        parameters: {\n")
	buf.WriteString("          \"skip.header.line.count\": \"1\",\n")
	buf.WriteString("        },\n")
	buf.WriteString("      },\n")
	buf.WriteString("    });\n")
}
