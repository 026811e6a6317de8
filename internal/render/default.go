package render

import "github.com/michal/smartresume/internal/template"

// defaultTemplate is the built-in fallback used whenever a role's template
// cannot be loaded. It accepts the same context shape as the file-based
// templates and renders every populated section; an empty record still yields
// a structurally valid shell.
var defaultTemplate = template.MustParse(defaultTemplateSource)

const defaultTemplateSource = `<div class="resume-template" style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; max-width: 800px; margin: 0 auto; background: white;">
  <div style="background: {{accentColor}}; color: white; padding: 40px 30px; text-align: center;">
    <h1 style="margin: 0 0 10px 0; font-size: 32px; font-weight: bold;">{{fullName}}</h1>
    {{#if jobRole.name}}<p style="margin: 0 0 20px 0; font-size: 18px; opacity: 0.9;">{{jobRole.name}}</p>{{/if}}
    <div style="font-size: 14px;">
      {{#if personalInfo.email}}<span>{{personalInfo.email}}</span>{{/if}}
      {{#if personalInfo.phone}}<span> &bull; {{personalInfo.phone}}</span>{{/if}}
      {{#if personalInfo.address}}<span> &bull; {{personalInfo.address}}</span>{{/if}}
      {{#if personalInfo.linkedin}}<span> &bull; LinkedIn: {{personalInfo.linkedin}}</span>{{/if}}
      {{#if personalInfo.website}}<span> &bull; Portfolio: {{personalInfo.website}}</span>{{/if}}
    </div>
  </div>
  <div style="padding: 30px;">
    {{#if personalInfo.objective}}
    <div class="section section-objective" style="margin-bottom: 30px;">
      <h2 style="color: {{accentColor}}; font-size: 20px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Professional Objective</h2>
      <p style="text-align: justify; margin: 0;">{{personalInfo.objective}}</p>
    </div>
    {{/if}}
    {{#if experience}}
    <div class="section section-experience" style="margin-bottom: 30px;">
      <h2 style="color: {{accentColor}}; font-size: 20px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Work Experience</h2>
      {{#each experience}}
      <div class="experience-entry" style="margin-bottom: 25px;">
        <h3 style="color: {{accentColor}}; font-size: 16px; margin: 0 0 5px 0;">{{title}}</h3>
        <p style="font-style: italic; color: #666; margin: 0 0 5px 0; font-size: 14px;">{{company}}</p>
        <p style="color: #888; font-size: 12px; margin: 0 0 10px 0;">{{startDate}} - {{endDate}}</p>
        {{#if description}}<p style="margin: 0; font-size: 13px; text-align: justify;">{{description}}</p>{{/if}}
      </div>
      {{/each}}
    </div>
    {{/if}}
    {{#if education}}
    <div class="section section-education" style="margin-bottom: 30px;">
      <h2 style="color: {{accentColor}}; font-size: 20px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Education</h2>
      {{#each education}}
      <div class="education-entry" style="margin-bottom: 15px;">
        <h3 style="color: {{accentColor}}; font-size: 15px; margin: 0 0 5px 0;">{{degree}}</h3>
        <p style="color: #666; margin: 0; font-size: 13px;">{{institution}}{{#if year}} ({{year}}){{/if}}{{#if gpa}} - GPA: {{gpa}}{{/if}}</p>
        {{#if location}}<p style="color: #888; margin: 0; font-size: 12px;">{{location}}</p>{{/if}}
      </div>
      {{/each}}
    </div>
    {{/if}}
    {{#if skills.technical}}
    <div class="section section-technical-skills" style="margin-bottom: 25px;">
      <h2 style="color: {{accentColor}}; font-size: 18px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Technical Skills</h2>
      <div>{{#each skills.technical}}<span class="skill-tag" style="background: {{accentColor}}; color: white; padding: 6px 12px; border-radius: 15px; font-size: 11px; display: inline-block; margin: 2px;">{{this}}</span>{{/each}}</div>
    </div>
    {{/if}}
    {{#if skills.soft}}
    <div class="section section-soft-skills" style="margin-bottom: 25px;">
      <h2 style="color: {{accentColor}}; font-size: 18px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Soft Skills</h2>
      <div>{{#each skills.soft}}<span class="skill-tag" style="background: {{accentColor}}; color: white; padding: 6px 12px; border-radius: 15px; font-size: 11px; display: inline-block; margin: 2px;">{{this}}</span>{{/each}}</div>
    </div>
    {{/if}}
    {{#if certifications}}
    <div class="section section-certifications" style="margin-bottom: 25px;">
      <h2 style="color: {{accentColor}}; font-size: 18px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Certifications</h2>
      {{#each certifications}}
      <div class="certification-entry" style="margin-bottom: 12px;">
        <h3 style="color: {{accentColor}}; font-size: 14px; margin: 0 0 3px 0;">{{name}}</h3>
        {{#if issuer}}<p style="color: #666; margin: 0; font-size: 12px;">{{issuer}}{{#if year}} ({{year}}){{/if}}</p>{{/if}}
      </div>
      {{/each}}
    </div>
    {{/if}}
    {{#if languages}}
    <div class="section section-languages" style="margin-bottom: 25px;">
      <h2 style="color: {{accentColor}}; font-size: 18px; border-bottom: 2px solid {{accentColor}}; padding-bottom: 8px;">Languages</h2>
      {{#each languages}}
      <div class="language-entry" style="margin-bottom: 8px;">
        <span style="font-weight: bold; font-size: 13px;">{{name}}</span>{{#if level}}<span style="color: #666; font-size: 12px;"> - {{level}}</span>{{/if}}
      </div>
      {{/each}}
    </div>
    {{/if}}
  </div>
</div>
`
